// Package intervention computes structural interventions on a contact
// network. The single policy provided caps effective gathering sizes:
// individuals with too many simultaneous contacts have their excess
// connections cancelled for the duration of an intervention period.
//
// The policy is pure: it returns the edge set to cancel and mutates nothing.
// Callers remove and later restore the edges explicitly through
// contact.Network.RemoveEdges / AddEdges, keeping every topology mutation an
// auditable operation. Because contact.Edge is an unordered pair, an edge
// cancelled independently from both endpoints collapses to a single removal.
//
// Configuration contract: a negative minConnections is a configuration error
// with undefined results and is not validated here.
package intervention
