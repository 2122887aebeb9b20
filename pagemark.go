// Package pagemark provides a local, CLI-based read-it-later tool.
// It saves web pages by extracting their main content with competing
// heuristics, converts the winning region to markdown, scores extraction
// quality, optionally summarizes the text with an AI model, and stores
// everything in a local SQLite database.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, gemini/).
package pagemark
