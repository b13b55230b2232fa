package check402

import (
	"fmt"
	"io"
)

// WriteReport writes one block per client to w, in the order given:
//
//	1.2.3.4
//	  requests: 2
//	  user_agents:
//	    UA1
//	    UA2
//
// User agents are listed in ascending order.
func WriteReport(w io.Writer, clients []*Client) error {
	for _, c := range clients {
		_, err := fmt.Fprintf(w, "%s\n  requests: %d\n  user_agents:\n", c.IP, c.Requests)
		if err != nil {
			return err
		}
		for _, ua := range c.SortedUserAgents() {
			if _, err := fmt.Fprintf(w, "    %s\n", ua); err != nil {
				return err
			}
		}
	}
	return nil
}
