// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags, environment
variables, and an optional .env file.

# Resolution Order

Flags win, then environment, then defaults:

  - -p / PORT: server port (default 3322)
  - -t / DATABASE_TYPE: "sqlite" (default) or "postgres"
  - -d / DATABASE_URL: connection string (default file:flashpoll.db for sqlite,
    required for postgres)
  - -b / BASE_URL: public base URL embedded in shareable links
    (default http://localhost:<port>)
  - -admin-token / ADMIN_TOKEN: shared secret for the admin listing; leaving
    it empty disables the endpoint

A .env file in the working directory is loaded before parsing, so local
development can keep secrets out of the shell history.
*/
package cliparse
