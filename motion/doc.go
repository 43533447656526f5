// Package motion models the displacement of a recording probe over
// time, as estimated by motion correction of extracellular recordings.
//
// # Displacement model
//
// Displacement is sampled on a regular grid: temporal bin centers in
// seconds crossed with spatial bin centers in micrometers along one
// probe axis. Each recording segment has its own temporal axis and
// displacement matrix; the spatial axis is shared. A single spatial
// bin makes the Motion rigid.
//
// Queries interpolate between bin centers with a configurable method
// (linear, nearest or cubic) and clamp coordinates outside the
// sampled range to the nearest edge, so estimates never extrapolate.
// DisplacementAt evaluates paired points, DisplacementGrid the cross
// product of times and locations.
//
// # Persistence
//
// Save and Load exchange Motions with other analysis tools through a
// folder of .npy arrays plus a JSON sidecar describing the object.
package motion
