// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package keys generates the short random identifiers used as poll keys and
creator keys.

Keys are 10 characters drawn from a base62 alphabet, giving ~59 bits of
entropy per key. A poll key and its creator key are generated independently,
so one is never derivable from the other; possession of a key is the entire
access model.

Uniqueness is not this package's job. The store's unique constraints reject a
colliding key at insert time and the service retries with a fresh pair.
*/
package keys
