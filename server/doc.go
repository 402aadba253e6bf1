// SPDX-License-Identifier: MIT

// Package server exposes maze generation over HTTP with gin.
//
// Routes, relative to the base URL (default "/api"):
//
//	GET /v1/algorithms  names of the available generators
//	GET /v1/mazes       generate a maze; query parameters width, height,
//	                    algorithm, seed and solve
//
// Every response carries an X-Request-ID header, echoed from the request
// when present and generated otherwise. Mazes live only for the duration of
// the request.
package server
