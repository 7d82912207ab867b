package k8s

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/Taishi66/podterm/internal/domain"
)

const namespacePageSize = 500

// ListNamespaces returns every namespace the user can list, sorted by name.
// Large clusters are read page by page.
func (c *Client) ListNamespaces(ctx context.Context) ([]domain.NamespaceInfo, error) {
	namespaces := make([]domain.NamespaceInfo, 0)
	opts := metav1.ListOptions{Limit: namespacePageSize}
	for {
		page, err := c.clientset.CoreV1().Namespaces().List(ctx, opts)
		if err != nil {
			return nil, classifyError(err, c.serverURL)
		}
		for _, ns := range page.Items {
			namespaces = append(namespaces, toNamespaceInfo(ns))
		}
		if page.Continue == "" {
			break
		}
		opts.Continue = page.Continue
	}

	slices.SortFunc(namespaces, func(a, b domain.NamespaceInfo) int {
		return strings.Compare(a.Name, b.Name)
	})
	slog.Debug("Listed namespaces.", "count", len(namespaces))
	return namespaces, nil
}

func toNamespaceInfo(ns corev1.Namespace) domain.NamespaceInfo {
	return domain.NamespaceInfo{
		Name:      ns.Name,
		Status:    string(ns.Status.Phase),
		CreatedAt: ns.CreationTimestamp.Time,
	}
}
