package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kassa-app/kassa/internal/application/dto"
	"github.com/kassa-app/kassa/internal/application/usecase"
	"github.com/kassa-app/kassa/internal/domain/model"
)

func TestUpdateCredit_Execute(t *testing.T) {
	t.Run("edits the details of an active credit", func(t *testing.T) {
		credit, items := activeCredit(t)
		repo := creditRepoFor(credit, items, nil)

		uc := usecase.NewUpdateCreditUseCase(repo)

		accountID := uuid.New()
		categoryID := uuid.New()
		resp, err := uc.Execute(context.Background(), dto.UpdateCreditRequest{
			CreditID:   credit.ID().String(),
			Name:       "refinanced mortgage",
			AccountID:  accountID.String(),
			CategoryID: categoryID.String(),
			PaymentDay: 20,
		})

		require.NoError(t, err)
		assert.Equal(t, "refinanced mortgage", resp.Name)
		assert.Equal(t, 20, resp.PaymentDay)
		assert.Equal(t, string(model.CreditStatusActive), resp.Status)
		assert.Len(t, resp.Schedule, len(items))

		require.Len(t, repo.savedCredits, 1)
		saved := repo.savedCredits[0]
		assert.Equal(t, accountID, saved.AccountID())
		assert.Equal(t, credit.Version()+1, saved.Version())
	})

	t.Run("cancels the credit through the status field", func(t *testing.T) {
		credit, items := activeCredit(t)
		repo := creditRepoFor(credit, items, nil)

		uc := usecase.NewUpdateCreditUseCase(repo)

		resp, err := uc.Execute(context.Background(), dto.UpdateCreditRequest{
			CreditID: credit.ID().String(),
			Status:   string(model.CreditStatusCancelled),
		})

		require.NoError(t, err)
		assert.Equal(t, string(model.CreditStatusCancelled), resp.Status)
		// The schedule stays on record after cancellation.
		assert.Len(t, resp.Schedule, len(items))
	})

	t.Run("rejects editing a cancelled credit", func(t *testing.T) {
		credit, items := activeCredit(t)
		cancelled, err := credit.Cancel(time.Now().UTC())
		require.NoError(t, err)

		repo := creditRepoFor(cancelled, items, nil)
		uc := usecase.NewUpdateCreditUseCase(repo)

		_, err = uc.Execute(context.Background(), dto.UpdateCreditRequest{
			CreditID:   cancelled.ID().String(),
			Name:       "renamed",
			AccountID:  uuid.New().String(),
			CategoryID: uuid.New().String(),
			PaymentDay: 5,
		})

		assert.ErrorIs(t, err, model.ErrIllegalStateTransition)
		assert.Empty(t, repo.savedCredits)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		credit, items := activeCredit(t)
		repo := creditRepoFor(credit, items, nil)

		uc := usecase.NewUpdateCreditUseCase(repo)

		_, err := uc.Execute(context.Background(), dto.UpdateCreditRequest{
			CreditID: credit.ID().String(),
			Status:   "FROZEN",
		})

		assert.ErrorIs(t, err, model.ErrValidation)
	})
}
