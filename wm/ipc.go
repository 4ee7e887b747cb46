package wm

import (
	"github.com/thiagokokada/hyprland-go"
	"github.com/thiagokokada/hyprland-go/helpers"
)

// IPCClient talks to Hyprland's request socket.
type IPCClient struct {
	client *hyprland.RequestClient
}

// NewIPCClient connects to the running Hyprland instance. It fails when the
// request socket cannot be located, e.g. outside a Hyprland session.
func NewIPCClient() (*IPCClient, error) {
	socket, err := helpers.GetSocket(helpers.RequestSocket)
	if err != nil {
		return nil, err
	}
	return newIPCClientAt(socket), nil
}

func newIPCClientAt(socket string) *IPCClient {
	return &IPCClient{client: hyprland.NewClient(socket)}
}

// Windows lists the compositor's clients.
func (c *IPCClient) Windows() ([]Window, error) {
	clients, err := c.client.Clients()
	if err != nil {
		return nil, err
	}
	windows := make([]Window, 0, len(clients))
	for _, cl := range clients {
		windows = append(windows, Window{Address: cl.Address, Title: cl.Title, Pinned: cl.Pinned})
	}
	return windows, nil
}

// Monitors lists the compositor's outputs.
func (c *IPCClient) Monitors() ([]Monitor, error) {
	monitors, err := c.client.Monitors()
	if err != nil {
		return nil, err
	}
	out := make([]Monitor, 0, len(monitors))
	for _, m := range monitors {
		out = append(out, Monitor{Name: m.Name, Width: m.Width, Height: m.Height, Focused: m.Focused})
	}
	return out, nil
}

// Dispatch sends one dispatcher over the socket.
func (c *IPCClient) Dispatch(dispatcher, arg string) error {
	resp, err := c.client.RawRequest(hyprland.RawRequest("dispatch " + dispatcher + " " + arg))
	if err != nil {
		return err
	}
	return checkDispatch(dispatcher, resp)
}
