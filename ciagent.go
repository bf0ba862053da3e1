// Package ciagent is a company intelligence agent. It crawls a company
// website breadth-first within a page budget, builds a per-company
// semantic knowledge base from the extracted text, and answers natural
// language questions grounded in passages retrieved from that knowledge
// base.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, gemini/, goquery/).
package ciagent
