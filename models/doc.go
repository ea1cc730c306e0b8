// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the request, response, and domain types shared across
the application.

# Domain Types

  - Poll: one published poll. The internal ID and the creator key are never
    serialized; the poll key is the only identifier takers ever see.
  - Question: ordered, typed question belonging to a poll. Options exist only
    for single/multi questions.
  - Response: one submission per responder id per poll. Answers are opaque
    JSON values keyed by question index.

# Answers

AnswerSet values are json.RawMessage on purpose: the service stores answers
exactly as submitted and the dashboard returns them without transformation.
Expected shapes by question type:

  - text:   "free text"
  - single: "chosen option" or null
  - multi:  ["option a", "option b"]

The shapes are not validated against the poll's declared options.
*/
package models
