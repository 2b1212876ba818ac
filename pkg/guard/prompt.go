// SPDX-License-Identifier: GPL-3.0-or-later

package guard

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lanwatch/arpsentry/pkg/arp"
)

// ConsolePrompter implements Prompter over a line-oriented stream.
// Only an explicit "N" or "n" declines; anything else, empty input
// included, accepts.
type ConsolePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsolePrompter returns a ConsolePrompter reading decisions from
// in and writing prompts to out
func NewConsolePrompter(in io.Reader, out io.Writer) *ConsolePrompter {
	return &ConsolePrompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Confirm presents the alert and reads a single decision line
func (p *ConsolePrompter) Confirm(hw arp.MAC, ip arp.IPv4) bool {
	fmt.Fprintf(
		p.out,
		"%s is claiming %s - add a permanent entry for the address recorded at scan time? (Y/n) ",
		hw,
		ip,
	)

	line, _ := p.in.ReadString('\n')

	answer := strings.TrimRight(line, "\r\n")

	return answer != "N" && answer != "n"
}
