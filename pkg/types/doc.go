// Package types defines the Segment and Trip entity types, the standard
// error values, and the CLI configuration for the waypoints itinerary tool.
package types
