package importer

import (
	"context"
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/cokeke26/fenats/internal/model"
	sharedContext "github.com/cokeke26/fenats/internal/shared/context"
	"github.com/cokeke26/fenats/internal/shared/rut"
	"github.com/cokeke26/fenats/internal/shared/token"
)

const maxSourceLength = 255

// MemberStore is the persistence the reconciler writes through.
// FindByRut returns (nil, nil) when no member has that normalized RUT.
type MemberStore interface {
	FindByRut(ctx context.Context, normalizedRut string) (*model.Member, error)
	Create(ctx context.Context, member *model.Member) error
	Update(ctx context.Context, member *model.Member) error
}

// Batch describes where a set of rows comes from and who imports it.
type Batch struct {
	Affiliate string
	Source    string
	Actor     sharedContext.Actor
}

// Label is the provenance stored on every member touched by the batch.
func (b Batch) Label() string {
	parts := make([]string, 0, 2)
	for _, p := range []string{b.Affiliate, b.Source} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	label := strings.Join(parts, " / ")

	if r := []rune(label); len(r) > maxSourceLength {
		label = string(r[:maxSourceLength])
	}
	return label
}

// Result summarizes one import. TotalRows counts every extracted row,
// including those Skipped because their RUT did not normalize.
type Result struct {
	TotalRows int `json:"totalRows"`
	Created   int `json:"created"`
	Updated   int `json:"updated"`
	Skipped   int `json:"skipped"`
}

type Reconciler struct {
	store    MemberStore
	newToken token.Generator
	now      func() time.Time
}

func NewReconciler(store MemberStore, newToken token.Generator) *Reconciler {
	return &Reconciler{
		store:    store,
		newToken: newToken,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Reconcile creates or updates one member per row, in order, each write
// committed on its own. A store error stops the import: the returned Result
// holds what was committed before it and the error wraps ErrImportAborted.
func (r *Reconciler) Reconcile(ctx context.Context, rows iter.Seq[ImportRow], batch Batch) (Result, error) {
	var result Result
	label := batch.Label()
	affiliate := strings.TrimSpace(batch.Affiliate)

	for row := range rows {
		result.TotalRows++

		normalized := rut.Normalize(row.RawID)
		if normalized == "" {
			result.Skipped++
			continue
		}

		importedAt := r.now()
		entry := memberEntry{
			rut:        normalized,
			display:    rut.Format(normalized),
			name:       row.FullName,
			affiliate:  affiliate,
			gender:     ClassifyGender(row.Gender),
			source:     label,
			importedAt: &importedAt,
		}

		created, err := r.apply(ctx, entry, batch.Actor)
		if err != nil {
			return result, fmt.Errorf("%w: row %d (%s): %w", ErrImportAborted, result.TotalRows, rut.Mask(normalized), err)
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
	}

	return result, nil
}

type memberEntry struct {
	rut        string
	display    string
	name       string
	affiliate  string
	gender     model.Gender
	source     string
	importedAt *time.Time
}

func (r *Reconciler) apply(ctx context.Context, e memberEntry, actor sharedContext.Actor) (bool, error) {
	existing, err := r.store.FindByRut(ctx, e.rut)
	if err != nil {
		return false, fmt.Errorf("find member: %w", err)
	}

	if existing == nil {
		tok, err := r.newToken()
		if err != nil {
			return false, fmt.Errorf("generate token: %w", err)
		}

		member := model.NewMember(e.rut, e.display, e.name, e.affiliate, e.gender, tok)
		member.ImportSource = e.source
		member.ImportedAt = e.importedAt
		member.CreatedBy = actor.Ref()
		member.UpdatedBy = actor.Ref()

		if err := r.store.Create(ctx, member); err != nil {
			return false, fmt.Errorf("create member: %w", err)
		}
		return true, nil
	}

	existing.Name = e.name
	existing.RutDisplay = e.display
	existing.Affiliate = e.affiliate
	existing.Gender = e.gender
	existing.ImportSource = e.source
	existing.ImportedAt = e.importedAt
	existing.UpdatedBy = actor.Ref()

	if err := r.store.Update(ctx, existing); err != nil {
		return false, fmt.Errorf("update member: %w", err)
	}
	return false, nil
}
