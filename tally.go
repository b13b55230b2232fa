package check402

import "sort"

// Client accumulates the qualifying requests seen from one IP address.
type Client struct {
	IP         string
	Requests   int
	Statuses   map[int]struct{}
	UserAgents map[string]struct{}
}

func newClient(ip string) *Client {
	return &Client{
		IP:         ip,
		Statuses:   map[int]struct{}{},
		UserAgents: map[string]struct{}{},
	}
}

// OnlyStatus reports whether every qualifying request from c got the given
// status code back.
func (c *Client) OnlyStatus(code int) bool {
	if len(c.Statuses) != 1 {
		return false
	}
	_, ok := c.Statuses[code]
	return ok
}

// StatusCodes returns the distinct status codes seen for c, in ascending
// order.
func (c *Client) StatusCodes() []int {
	codes := make([]int, 0, len(c.Statuses))
	for code := range c.Statuses {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	return codes
}

// SortedUserAgents returns the distinct user agents seen for c, in ascending
// order.
func (c *Client) SortedUserAgents() []string {
	uas := make([]string, 0, len(c.UserAgents))
	for ua := range c.UserAgents {
		uas = append(uas, ua)
	}
	sort.Strings(uas)
	return uas
}

// Tally is a table of clients keyed by IP address. The zero value is not
// usable; create one with NewTally.
type Tally struct {
	clients map[string]*Client
}

// NewTally returns an empty Tally.
func NewTally() *Tally {
	return &Tally{clients: map[string]*Client{}}
}

// Add records e against its client's IP, and reports whether it did so.
// Entries that don't qualify (see Entry.Qualifies) are ignored.
func (t *Tally) Add(e Entry) bool {
	if !e.Qualifies() {
		return false
	}
	c, ok := t.clients[e.IP]
	if !ok {
		c = newClient(e.IP)
		t.clients[e.IP] = c
	}
	c.Statuses[e.Status] = struct{}{}
	c.UserAgents[e.UserAgent] = struct{}{}
	c.Requests++
	return true
}

// Client returns the tally for the given IP, if there is one.
func (t *Tally) Client(ip string) (*Client, bool) {
	c, ok := t.clients[ip]
	return c, ok
}

// Len returns the number of distinct clients in t.
func (t *Tally) Len() int {
	return len(t.clients)
}

// Exclusive returns the clients for which code is the only status ever seen,
// most requests first. Clients with equal request counts are sorted by IP.
func (t *Tally) Exclusive(code int) []*Client {
	var clients []*Client
	for _, c := range t.clients {
		if c.OnlyStatus(code) {
			clients = append(clients, c)
		}
	}
	sort.Slice(clients, func(i, j int) bool {
		if clients[i].Requests == clients[j].Requests {
			return clients[i].IP < clients[j].IP
		}
		return clients[i].Requests > clients[j].Requests
	})
	return clients
}
