// Package plan implements the economic-dispatch engine: it evaluates the
// marginal cost of each plant under current fuel prices, orders the fleet by
// merit, allocates the requested load under minimum/maximum output
// constraints and reconciles rounding so the reported total matches the
// demand exactly.
//
// The computation is pure and request-local. Allocators implement the
// Allocator interface; MeritAllocator is the default greedy strategy with a
// bounded repair step, LPAllocator solves a linear relaxation and falls back
// to the greedy allocator when minimum-output floors are violated.
package plan
