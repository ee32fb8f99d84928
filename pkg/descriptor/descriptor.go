/*
Copyright © 2025 Sugar Labs
SPDX-License-Identifier: Apache-2.0
*/

package descriptor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Option configures the Parser.
type Option func(*Parser)

// Parser parses activity descriptor (activity.info) content with
// customizable settings.
type Parser struct {
	separators      []string
	commentPrefixes []string
	maxSize         int
	caser           cases.Caser
}

// WithSeparators sets the key-value separators recognized on each line.
// The separator occurring earliest in a line wins. Default is "=" and ":".
func WithSeparators(seps ...string) Option {
	return func(p *Parser) {
		p.separators = seps
	}
}

// WithCommentPrefixes sets the prefixes that mark a line as a comment.
// Default is "#" and ";".
func WithCommentPrefixes(prefixes ...string) Option {
	return func(p *Parser) {
		p.commentPrefixes = prefixes
	}
}

// WithMaxSize sets the maximum size (in bytes) of descriptor content to be
// parsed. Default is 1MB.
func WithMaxSize(size int) Option {
	return func(p *Parser) {
		p.maxSize = size
	}
}

// NewParser creates a new descriptor parser with the provided options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		separators:      []string{"=", ":"},
		commentPrefixes: []string{"#", ";"},
		maxSize:         1 << 20, // 1MB default
		caser:           cases.Fold(),
	}

	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse converts descriptor content into a flat key-value mapping.
//
// Keys are case-folded, values trimmed. Blank lines, comment lines, and
// section markers ([Activity]) are skipped. Lines without a separator are
// skipped rather than treated as fatal. When a key occurs more than once,
// the last occurrence wins.
func (p *Parser) Parse(content []byte) (map[string]string, error) {
	if len(content) > p.maxSize {
		return nil, fmt.Errorf("descriptor too large: %d bytes (max %d)", len(content), p.maxSize)
	}
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("descriptor is not valid UTF-8")
	}

	info := make(map[string]string)

	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || p.isComment(line) || isSectionMarker(line) {
			continue
		}

		key, value, ok := p.splitLine(line)
		if !ok {
			// malformed line, skip
			continue
		}

		info[p.caser.String(key)] = value
	}

	return info, nil
}

// splitLine splits a line on the earliest occurring separator.
func (p *Parser) splitLine(line string) (key, value string, ok bool) {
	sepIdx := -1
	sepLen := 0
	for _, sep := range p.separators {
		if i := strings.Index(line, sep); i >= 0 && (sepIdx < 0 || i < sepIdx) {
			sepIdx = i
			sepLen = len(sep)
		}
	}
	if sepIdx < 0 {
		return "", "", false
	}

	key = strings.TrimSpace(line[:sepIdx])
	value = strings.TrimSpace(line[sepIdx+sepLen:])
	if key == "" {
		return "", "", false
	}
	return key, value, true
}

func (p *Parser) isComment(line string) bool {
	for _, prefix := range p.commentPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

func isSectionMarker(line string) bool {
	return strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]")
}
