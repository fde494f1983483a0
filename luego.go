// Package luego provides a heuristic article-extraction engine for web
// pages: given a URL it recovers clean article metadata (title, author,
// publication date, thumbnail) and a readable Markdown rendering of the
// article body, with fallback tiers for pages the primary heuristic
// cannot handle.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, readability/).
package luego
