// Package route models delivery routes. A Route is created once per optimization
// request together with its ordered Stops and is never reordered afterwards; the
// stop order is the one returned by the directions provider, recorded as an
// explicit zero-based sequence.
package route
