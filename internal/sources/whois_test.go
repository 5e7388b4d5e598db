package sources

import (
	"bufio"
	"context"
	"net"
	"strings"
	"testing"

	"ioc-triage/internal/errs"
)

// fakeWhois answers one connection like a registry would: read a line,
// write a canned response, close.
func fakeWhois(t *testing.T, respond func(query string) []byte) string {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { listener.Close() })

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			go func(c net.Conn) {
				defer c.Close()
				line, err := bufio.NewReader(c).ReadString('\n')
				if err != nil {
					return
				}
				c.Write(respond(strings.TrimRight(line, "\r\n")))
			}(conn)
		}
	}()

	return listener.Addr().String()
}

func swapWhoisServer(t *testing.T, addr string) {
	t.Helper()
	old := whoisServer
	whoisServer = addr
	t.Cleanup(func() { whoisServer = old })
}

func TestWhois(t *testing.T) {
	addr := fakeWhois(t, func(query string) []byte {
		if query != "example.com" {
			t.Errorf("unexpected query: %q", query)
		}
		return []byte("Domain Name: EXAMPLE.COM\r\nRegistrar: RESERVED\r\n")
	})
	swapWhoisServer(t, addr)

	got, err := Whois(context.Background(), "example.com")
	if err != nil {
		t.Fatalf("Whois returned error: %v", err)
	}
	if !strings.Contains(got, "Domain Name: EXAMPLE.COM") {
		t.Fatalf("unexpected response: %q", got)
	}
}

func TestWhoisInvalidUTF8(t *testing.T) {
	addr := fakeWhois(t, func(string) []byte {
		return []byte{0xff, 0xfe, 0xfd}
	})
	swapWhoisServer(t, addr)

	_, err := Whois(context.Background(), "example.com")
	if !errs.IsParse(err) {
		t.Fatalf("error = %v, want ParseError", err)
	}
}

func TestWhoisConnectionRefused(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := listener.Addr().String()
	listener.Close()
	swapWhoisServer(t, addr)

	_, err = Whois(context.Background(), "example.com")
	if !errs.IsNetwork(err) {
		t.Fatalf("error = %v, want NetworkError", err)
	}
}
