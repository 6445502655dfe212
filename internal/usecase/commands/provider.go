package commands

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"find-my-space/internal/domain/provider"
	"find-my-space/internal/domain/user"
	reqdto "find-my-space/internal/handler/dto/request"
	"find-my-space/internal/pkg/clock"
	"find-my-space/internal/pkg/errs"
	"find-my-space/internal/pkg/secret"
	"find-my-space/internal/usecase/shared"
)

type ProviderCommands interface {
	SubmitProfile(ctx context.Context, actor *user.Identity, form reqdto.ProviderProfileForm) error
}

type providerCommandsImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	blobs    BlobStore
	maxBytes int64
}

func NewProviderCommands(uow shared.UnitOfWork, clk clock.Clock, blobs BlobStore, maxUploadBytes int64) ProviderCommands {
	return &providerCommandsImpl{uow: uow, clock: clk, blobs: blobs, maxBytes: maxUploadBytes}
}

// SubmitProfile stores the id proof, hashes the government id and marks the
// caller a verified provider.
func (uc *providerCommandsImpl) SubmitProfile(ctx context.Context, actor *user.Identity, form reqdto.ProviderProfileForm) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	if form.IDProof == nil {
		return provider.ErrIDProofRequired
	}
	app, err := form.ToApplication(actor.ID(), actor.DisplayName(), actor.Email().Value())
	if err != nil {
		return err
	}

	key := idProofKey(actor.ID(), form.IDProof.Filename)
	// validate everything else before the upload
	app.IDProofURL = key
	if err := app.Validate(); err != nil {
		return err
	}

	if form.IDProof.Size > uc.maxBytes {
		return ErrIDProofTooLarge
	}
	f, err := form.IDProof.Open()
	if err != nil {
		return errs.Mark(err, ErrIDProofUpload)
	}
	defer f.Close()

	body, err := io.ReadAll(io.LimitReader(f, uc.maxBytes+1))
	if err != nil {
		return errs.Mark(err, ErrIDProofUpload)
	}
	if int64(len(body)) > uc.maxBytes {
		return ErrIDProofTooLarge
	}
	contentType := http.DetectContentType(body)
	if !allowedProofType(contentType) {
		return ErrIDProofContentType
	}

	url, err := uc.blobs.Put(ctx, key, contentType, bytes.NewReader(body))
	if err != nil {
		return errs.Mark(err, ErrIDProofUpload)
	}
	app.IDProofURL = url

	govID := provider.NormalizedGovernmentID(app.GovernmentID)
	hash, err := secret.Hash(govID)
	if err != nil {
		return err
	}
	profile, err := provider.NewProfile(app, hash, secret.Last4(govID), uc.clock.Now())
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Providers().Upsert(ctx, profile)
	})
}

func idProofKey(userID, filename string) string {
	name := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
	if name == "" || name == "." || name == "_" {
		name = "upload"
	}
	return "idProofs/" + userID + "_" + name
}

func allowedProofType(ct string) bool {
	return strings.HasPrefix(ct, "image/") || ct == "application/pdf"
}
