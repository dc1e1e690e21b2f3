// Package services contains pure domain services that derive views from
// order store snapshots: the query engine shared by the admin board and the
// customer tracking page, and the aggregation reporter behind the dashboard.
//
// Services in this package hold no state and perform no mutations; they are
// deterministic functions of the snapshots they are given.
package services
