// Package va implements the driver's upper edge: the VA vtable surface
// a libva-compatible media player dispatches into. It owns the
// config/context/surface/buffer object tables, translates VA calls
// into internal/session and internal/m2m operations, and maps VA
// status codes onto the driver's internal errors.
package va
