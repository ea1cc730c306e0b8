// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package web embeds and renders the HTML pages: the landing/builder page, the
taking page, and the creator dashboard. Pages are server-rendered shells;
their small inline scripts talk to the JSON API.
*/
package web
