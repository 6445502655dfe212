//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"testing"

	"find-my-space/internal/domain/provider"
	reqdto "find-my-space/internal/handler/dto/request"
	"find-my-space/internal/pkg/errs"
	"find-my-space/internal/pkg/secret"
	"find-my-space/internal/usecase/commands"
	commandsmock "find-my-space/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)

func uploaded(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("id_proof", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["id_proof"][0]
}

func profileForm(proof *multipart.FileHeader) reqdto.ProviderProfileForm {
	return reqdto.ProviderProfileForm{
		Phone:             "98765 43210",
		GovernmentID:      "abcde 1234f",
		Location:          "Indiranagar",
		Signature:         "Ravi Kumar",
		AgreementSigned:   true,
		PayoutAccountName: "Ravi Kumar",
		PayoutAccountNo:   "123456789012",
		PayoutIFSC:        "HDFC0001234",
		IDProof:           proof,
	}
}

func TestSubmitProfile(t *testing.T) {
	ctx := context.Background()
	const maxBytes = 1024

	newUC := func(t *testing.T, f *fixture) (commands.ProviderCommands, *commandsmock.MockBlobStore) {
		blobs := commandsmock.NewMockBlobStore(gomock.NewController(t))
		return commands.NewProviderCommands(f.store, f.clock, blobs, maxBytes), blobs
	}

	t.Run("success: proof stored and government id hashed", func(t *testing.T) {
		f := newFixture(t)
		uc, blobs := newUC(t, f)
		blobs.EXPECT().Put(gomock.Any(), "idProofs/provider-1_my_id.png", "image/png", gomock.Any()).
			DoAndReturn(func(_ context.Context, key, _ string, r io.Reader) (string, error) {
				body, err := io.ReadAll(r)
				require.NoError(t, err)
				assert.Equal(t, pngBytes, body)
				return "https://cdn.example.com/" + key, nil
			}).Times(1)

		err := uc.SubmitProfile(ctx, f.provider, profileForm(uploaded(t, "my id.png", pngBytes)))

		require.NoError(t, err)
		p, ok := f.store.Provider("provider-1")
		require.True(t, ok)
		r := p.Record()
		assert.Equal(t, "Ravi", r.Name)
		assert.Equal(t, "ravi@example.com", r.Email)
		assert.Equal(t, "9876543210", r.Phone)
		assert.Equal(t, "234F", r.GovernmentIDLast4)
		assert.NotContains(t, r.GovernmentIDHash, "ABCDE1234F")
		assert.NoError(t, secret.Compare(r.GovernmentIDHash, "ABCDE1234F"))
		assert.Equal(t, "https://cdn.example.com/idProofs/provider-1_my_id.png", r.IDProofURL)
		assert.True(t, r.Verified)
		require.NotNil(t, r.Payout)
		assert.Equal(t, "HDFC0001234", r.Payout.IFSC)
	})

	t.Run("error: oversized proof never reaches storage", func(t *testing.T) {
		f := newFixture(t)
		uc, _ := newUC(t, f)
		big := append(append([]byte{}, pngBytes...), bytes.Repeat([]byte{1}, maxBytes)...)

		err := uc.SubmitProfile(ctx, f.provider, profileForm(uploaded(t, "id.png", big)))

		assert.True(t, errs.Is(err, commands.ErrIDProofTooLarge))
		_, ok := f.store.Provider("provider-1")
		assert.False(t, ok)
	})

	t.Run("error: text file is not a document", func(t *testing.T) {
		f := newFixture(t)
		uc, _ := newUC(t, f)

		err := uc.SubmitProfile(ctx, f.provider, profileForm(uploaded(t, "id.txt", []byte("just some text"))))
		assert.True(t, errs.Is(err, commands.ErrIDProofContentType))
	})

	t.Run("error: storage failure", func(t *testing.T) {
		f := newFixture(t)
		uc, blobs := newUC(t, f)
		blobs.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("bucket missing")).Times(1)

		err := uc.SubmitProfile(ctx, f.provider, profileForm(uploaded(t, "id.png", pngBytes)))

		assert.True(t, errs.Is(err, commands.ErrIDProofUpload))
		assert.Equal(t, 0, f.store.Commits)
	})

	tests := []struct {
		name    string
		mutate  func(*reqdto.ProviderProfileForm)
		wantErr error
	}{
		{name: "agreement not signed", mutate: func(fm *reqdto.ProviderProfileForm) { fm.AgreementSigned = false }, wantErr: provider.ErrAgreementRequired},
		{name: "short government id", mutate: func(fm *reqdto.ProviderProfileForm) { fm.GovernmentID = "AB12" }, wantErr: provider.ErrGovernmentIDFormat},
		{name: "bad phone", mutate: func(fm *reqdto.ProviderProfileForm) { fm.Phone = "12ab" }, wantErr: provider.ErrPhoneRequired},
		{name: "partial payout details", mutate: func(fm *reqdto.ProviderProfileForm) { fm.PayoutIFSC = "" }, wantErr: provider.ErrInvalidPayout},
		{name: "missing proof", mutate: func(fm *reqdto.ProviderProfileForm) { fm.IDProof = nil }, wantErr: provider.ErrIDProofRequired},
	}
	for _, tc := range tests {
		t.Run("error: "+tc.name, func(t *testing.T) {
			f := newFixture(t)
			uc, _ := newUC(t, f)
			form := profileForm(uploaded(t, "id.png", pngBytes))
			tc.mutate(&form)

			err := uc.SubmitProfile(ctx, f.provider, form)
			assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
		})
	}
}
