// Package export renders the recommended learning path as a PDF document.
package export
