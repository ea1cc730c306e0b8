// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the route table using Go 1.22+ method patterns.

NewRouter wires the whole service graph: store -> sweeper -> service ->
handlers. Every route except /health goes through the logging middleware;
the admin listing additionally goes through the shared-secret gate.
*/
package router
