// Copyright (c) 2026 Meibo. All rights reserved.
// Author: dev.meibo.app@gmail.com

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// confirmPrompt asks the operator how to resolve duplicate identifiers. It
// implements [roster.DuplicateResolver].
type confirmPrompt struct {
	in  *bufio.Reader
	out io.Writer
}

func newConfirmPrompt(in io.Reader, out io.Writer) *confirmPrompt {
	return &confirmPrompt{in: bufio.NewReader(in), out: out}
}

// Overwrite prints the duplicated identifiers and asks whether later
// occurrences should replace the stored ones. Anything other than an
// explicit yes keeps the first occurrence.
func (p *confirmPrompt) Overwrite(ids []string) bool {
	fmt.Fprintf(p.out, "Duplicate identifiers found: %s\n", strings.Join(ids, ", "))
	fmt.Fprint(p.out, "Overwrite existing entries with the later ones? [y/N]: ")

	line, err := p.in.ReadString('\n')
	if err != nil {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
