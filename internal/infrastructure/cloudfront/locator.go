// Package cloudfront locates live distributions through the aws CLI.
package cloudfront

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mkarlsen/edgedeploy/internal/domain"
	"github.com/mkarlsen/edgedeploy/internal/ports"
)

// Locator lists distributions and matches on exact domain name. The listing
// is unpaginated; the full set is assumed to fit in a single response.
type Locator struct {
	Runner ports.CommandRunner
	Logger ports.Logger
}

type listDistributionsResponse struct {
	DistributionList struct {
		Items []domain.Distribution `json:"Items"`
	} `json:"DistributionList"`
}

// FindByDomain implements ports.DistributionLocator. Zero matches is
// ErrNotFound; more than one match is ErrAmbiguousMatch rather than an
// arbitrary pick.
func (l *Locator) FindByDomain(ctx context.Context, domainName string) (domain.Distribution, error) {
	res, err := l.Runner.Run(ctx, "cloudfront", "list-distributions", "--output", "json")
	if err != nil {
		return domain.Distribution{}, fmt.Errorf("list distributions: %w", err)
	}

	var parsed listDistributionsResponse
	if err := json.Unmarshal([]byte(res.Stdout), &parsed); err != nil {
		return domain.Distribution{}, fmt.Errorf("list distributions: parse response: %w", err)
	}

	var matches []domain.Distribution
	for _, item := range parsed.DistributionList.Items {
		if item.DomainName == domainName {
			matches = append(matches, item)
		}
	}

	switch len(matches) {
	case 0:
		return domain.Distribution{}, fmt.Errorf("distribution with domain %s: %w", domainName, domain.ErrNotFound)
	case 1:
		if l.Logger != nil {
			l.Logger.Debug("located distribution", map[string]interface{}{
				"id":     matches[0].ID,
				"domain": matches[0].DomainName,
			})
		}
		return matches[0], nil
	default:
		return domain.Distribution{}, fmt.Errorf("%d distributions with domain %s: %w", len(matches), domainName, domain.ErrAmbiguousMatch)
	}
}

var _ ports.DistributionLocator = (*Locator)(nil)
