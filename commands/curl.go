package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sandshell/sandshell/core/vos"
)

// Curl implements a curl command that fetches through the configured HTTP
// proxy. Requests are bounded by the session timeout; a timeout surfaces
// as an error instead of hanging the compound line.
func Curl(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "curl [-s] [-X METHOD] [-H HEADER]... [-o FILE] URL",
		Short: "Transfer a URL.",
	}

	opts := cmd.Flags()
	silent := opts.BoolLong("silent", 's', "silent mode")
	output := opts.StringLong("output", 'o', "", "write to FILE instead of stdout")
	method := opts.StringLong("request", 'X', http.MethodGet, "request method to use")
	headers := opts.ListLong("header", 'H', "pass custom header(s) to server")

	return cmd.RunE(virtOS, func() error {
		args := opts.Args()
		if len(args) == 0 {
			return errors.New("no URL specified")
		}

		client := virtOS.HTTPClient()
		if client == nil {
			return errors.New("network access is disabled")
		}

		rawURL := args[0]
		if !strings.Contains(rawURL, "://") {
			rawURL = "http://" + rawURL
		}
		if _, err := url.Parse(rawURL); err != nil {
			return fmt.Errorf("invalid URL: %s", args[0])
		}

		// All traffic leaves through the proxy; the target goes in a
		// query parameter so the proxy can enforce its own policy.
		fetchURL := rawURL
		if proxy := virtOS.ProxyURL(); proxy != "" {
			fetchURL = proxy + "?url=" + url.QueryEscape(rawURL)
		}

		request, err := http.NewRequestWithContext(context.Background(), *method, fetchURL, nil)
		if err != nil {
			return err
		}
		request.Header.Set("User-Agent", "curl/8.5.0")
		for _, header := range *headers {
			key, value, _ := strings.Cut(header, ": ")
			request.Header.Add(key, value)
		}

		response, err := client.Do(request)
		if err != nil {
			return err
		}
		defer response.Body.Close()

		dest := io.Writer(virtOS.Stdout())
		if *output != "" && *output != "-" {
			fd, err := virtOS.Create(*output)
			if err != nil {
				return errors.New("couldn't create output file")
			}
			defer fd.Close()
			dest = fd
		}

		if _, err := io.Copy(dest, response.Body); err != nil {
			return err
		}

		if !*silent && response.StatusCode >= 400 {
			fmt.Fprintf(virtOS.Stderr(), "curl: server returned %s\n", response.Status)
		}
		return nil
	})
}

var _ vos.ProcessFunc = Curl

func init() {
	register(&Command{
		Name:  "curl",
		Use:   "curl [-s] [-X METHOD] [-H HEADER]... [-o FILE] URL",
		Short: "Transfer a URL.",
		Proc:  Curl,
	})
}
