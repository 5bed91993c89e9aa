// Package kernel contains shared value objects used across the domain model.
// Currently that is the UUID identifier wrapper; aggregate-specific value
// objects live with their aggregates.
package kernel
