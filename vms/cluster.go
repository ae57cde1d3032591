// File: vms/cluster.go
package vms

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// ClusterNodes returns the member node names of the host's VMScluster,
// parsed from SHOW CLUSTER output.
func (c *Client) ClusterNodes(ctx context.Context) ([]string, error) {
	res, err := c.Run(ctx, "SHOW CLUSTER")
	if err != nil {
		return nil, err
	}
	return parseClusterNodes(res.Stdout), nil
}

func parseClusterNodes(listing string) []string {
	var nodes []string
	for _, line := range strings.Split(listing, "\n") {
		if line == "" || !strings.Contains(line, "MEMBER ") {
			continue
		}
		fields := strings.Split(line, "|")
		if len(fields) > 1 {
			if node := strings.TrimSpace(fields[1]); node != "" {
				nodes = append(nodes, node)
			}
		}
	}
	return nodes
}

// RunClusterwide runs the given commands on every cluster node through
// SYSMAN: a DO script is generated per node and executed with MCR SYSMAN.
func (c *Client) RunClusterwide(ctx context.Context, commands []string) (Result, error) {
	nodes, err := c.ClusterNodes(ctx)
	if err != nil {
		return Result{}, err
	}
	if len(nodes) == 0 {
		return Result{}, fmt.Errorf("%w: no cluster members found", ErrCommandFailed)
	}

	var script bytes.Buffer
	for _, node := range nodes {
		fmt.Fprintf(&script, "SET ENVIRONMENT /NODE=(%s)\n", node)
		for _, command := range commands {
			fmt.Fprintf(&script, "DO %s\n", command)
		}
	}
	script.WriteString("EXIT\n")

	return c.RunScriptContent(ctx, script.Bytes(), "MCR SYSMAN")
}

// RunOnHosts runs one command on several hosts concurrently, dialing each
// host independently. All hosts are attempted; per-host failures are
// aggregated into the returned error while successful results are still
// reported by host address.
func RunOnHosts(ctx context.Context, configs []Config, command string) (map[string]Result, error) {
	var (
		mu      sync.Mutex
		results = make(map[string]Result, len(configs))
		errs    *multierror.Error
	)

	g, ctx := errgroup.WithContext(ctx)
	for _, cfg := range configs {
		cfg := cfg
		g.Go(func() error {
			client, err := Dial(ctx, cfg)
			if err != nil {
				mu.Lock()
				errs = multierror.Append(errs, err)
				mu.Unlock()
				return nil
			}
			defer client.Close()

			res, err := client.Run(ctx, command)
			mu.Lock()
			results[cfg.Host] = res
			if err != nil {
				errs = multierror.Append(errs, err)
			}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return results, errs.ErrorOrNil()
}
