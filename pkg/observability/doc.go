/*
Package observability provides tools for monitoring Furrow searches.

It turns the search lifecycle hooks into Prometheus metrics and structured log
records. Both are plain domain.SearchHooks and can be combined.
*/
package observability
