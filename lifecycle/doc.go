// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package lifecycle implements best-effort expiry of polls.

A poll expires 90 days after creation as a pure function of wall-clock time;
no stored flag changes. The Sweeper turns that into deletion: it finds every
poll past its expiry and cascade-deletes each one in its own transaction.
Sweeps run at process start and synchronously before each poll creation, so
a flood of creations still bounds the stored expired data.
*/
package lifecycle
