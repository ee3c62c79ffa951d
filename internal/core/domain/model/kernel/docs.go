// Package kernel provides the value objects shared by every domain model package:
// UUID identifiers and latitude/longitude Coordinates. Both are immutable and
// reject their zero values in Validate.
package kernel
