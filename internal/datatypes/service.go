// Package datatypes manages the mapping of file extensions to resource types.
package datatypes

import (
	"context"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/osse101/cmsadmin/internal/domain"
	"github.com/osse101/cmsadmin/internal/logger"
	"github.com/osse101/cmsadmin/internal/metrics"
	"github.com/osse101/cmsadmin/internal/repository"
)

// FormatExtension strips leading stars and dots and lowercases the rest.
// Names that are empty afterwards or contain a blank are rejected with domain.ErrBadName.
func FormatExtension(name string) (string, error) {
	ext := strings.TrimLeft(name, "*.")
	if ext == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrBadName, ErrMsgEmptyExtension)
	}
	if strings.ContainsFunc(ext, isBlank) {
		return "", fmt.Errorf("%w: %s %q", domain.ErrBadName, ErrMsgBlankInExtension, name)
	}
	return strings.ToLower(ext), nil
}

func isBlank(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// Service defines the extension mapping operations
type Service interface {
	Add(ctx context.Context, resourceType, extension string) (*domain.ExtensionMapping, error)
	Remove(ctx context.Context, extension string) (bool, error)
	List(ctx context.Context) ([]domain.ResourceTypeExtensions, error)
	ResourceTypeFor(ctx context.Context, filename string) (string, error)
	ResourceTypes() []string
}

type service struct {
	repo          repository.Extensions
	resourceTypes []string
	known         map[string]bool
}

// NewService creates a datatypes service for the given resource types, in display order
func NewService(repo repository.Extensions, resourceTypes []string) Service {
	known := make(map[string]bool, len(resourceTypes))
	types := make([]string, 0, len(resourceTypes))
	for _, t := range resourceTypes {
		t = strings.TrimSpace(t)
		if t == "" || known[t] {
			continue
		}
		known[t] = true
		types = append(types, t)
	}
	return &service{repo: repo, resourceTypes: types, known: known}
}

// Add maps extension to resourceType
func (s *service) Add(ctx context.Context, resourceType, extension string) (*domain.ExtensionMapping, error) {
	if !s.known[resourceType] {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownResourceType, resourceType)
	}
	ext, err := FormatExtension(extension)
	if err != nil {
		return nil, err
	}

	mapping := domain.ExtensionMapping{Extension: ext, ResourceType: resourceType}
	if err := s.repo.InsertMapping(ctx, mapping); err != nil {
		if errors.Is(err, domain.ErrDuplicateExtension) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgAddFailed, err)
	}

	metrics.ExtensionMappingChanges.WithLabelValues(metrics.OperationAdd).Inc()
	logger.FromContext(ctx).Info(LogMsgMappingAdded, "extension", ext, "resource_type", resourceType)
	return &mapping, nil
}

// Remove deletes the mapping of extension and reports whether one existed
func (s *service) Remove(ctx context.Context, extension string) (bool, error) {
	ext, err := FormatExtension(extension)
	if err != nil {
		return false, err
	}

	removed, err := s.repo.DeleteMapping(ctx, ext)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgRemoveFailed, err)
	}
	if removed {
		metrics.ExtensionMappingChanges.WithLabelValues(metrics.OperationRemove).Inc()
		logger.FromContext(ctx).Info(LogMsgMappingRemoved, "extension", ext)
	}
	return removed, nil
}

// List returns one group per configured resource type, in configured order, with
// sorted extensions. Mappings to types that are no longer configured follow, sorted by type.
func (s *service) List(ctx context.Context) ([]domain.ResourceTypeExtensions, error) {
	mappings, err := s.repo.ListMappings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListFailed, err)
	}

	byType := make(map[string][]string)
	for _, m := range mappings {
		byType[m.ResourceType] = append(byType[m.ResourceType], m.Extension)
	}

	result := make([]domain.ResourceTypeExtensions, 0, len(s.resourceTypes))
	for _, t := range s.resourceTypes {
		result = append(result, group(t, byType[t]))
	}

	var stale []string
	for t := range byType {
		if !s.known[t] {
			stale = append(stale, t)
		}
	}
	sort.Strings(stale)
	for _, t := range stale {
		result = append(result, group(t, byType[t]))
	}
	return result, nil
}

// ResourceTypeFor returns the resource type mapped to the extension of filename
func (s *service) ResourceTypeFor(ctx context.Context, filename string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	if ext == "" {
		return DefaultResourceType, nil
	}

	m, err := s.repo.GetMapping(ctx, ext)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return DefaultResourceType, nil
		}
		return "", fmt.Errorf("%s: %w", ErrMsgLookupFailed, err)
	}
	return m.ResourceType, nil
}

func (s *service) ResourceTypes() []string {
	return append([]string(nil), s.resourceTypes...)
}

func group(resourceType string, extensions []string) domain.ResourceTypeExtensions {
	exts := append([]string{}, extensions...)
	sort.Strings(exts)
	return domain.ResourceTypeExtensions{ResourceType: resourceType, Extensions: exts}
}
