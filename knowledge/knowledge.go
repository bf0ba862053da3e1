// Package knowledge builds per-company knowledge bases from crawled text
// and answers questions against them.
package knowledge
