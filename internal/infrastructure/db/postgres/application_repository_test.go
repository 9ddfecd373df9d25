package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jobmatch/jobmatch-api/internal/core/domain"
)

// stubTx satisfies pgx.Tx via embedding; only the methods Decide touches are
// implemented, anything else panics on the embedded nil interface.
type stubTx struct {
	pgx.Tx
	execFn    func(sql string) (pgconn.CommandTag, error)
	execs     []string
	commits   int
	rollbacks int
}

func (t *stubTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	t.execs = append(t.execs, sql)
	return t.execFn(sql)
}

func (t *stubTx) Commit(ctx context.Context) error {
	t.commits++
	return nil
}

func (t *stubTx) Rollback(ctx context.Context) error {
	t.rollbacks++
	return nil
}

type stubTxBeginner struct {
	tx     *stubTx
	begins int
}

func (b *stubTxBeginner) Begin(ctx context.Context) (pgx.Tx, error) {
	b.begins++
	return b.tx, nil
}

func TestApplicationRepository_Decide_MovesInsideOneTransaction(t *testing.T) {
	tx := &stubTx{execFn: func(sql string) (pgconn.CommandTag, error) {
		if strings.Contains(sql, "INSERT") {
			return pgconn.NewCommandTag("INSERT 0 1"), nil
		}
		return pgconn.NewCommandTag("DELETE 1"), nil
	}}
	beginner := &stubTxBeginner{tx: tx}
	r := &ApplicationRepository{tx: beginner}

	if err := r.Decide(context.Background(), 7, domain.StateAccepted); err != nil {
		t.Fatalf("decide: %v", err)
	}
	if beginner.begins != 1 || tx.commits != 1 {
		t.Fatalf("expected one begin and one commit, got %d/%d", beginner.begins, tx.commits)
	}
	if len(tx.execs) != 2 {
		t.Fatalf("expected both halves on the transaction, got %d execs", len(tx.execs))
	}
	if !strings.Contains(tx.execs[0], "INSERT INTO accepted_applications") {
		t.Fatalf("first half is not the insert: %q", tx.execs[0])
	}
	if !strings.Contains(tx.execs[1], "DELETE FROM active_applications") {
		t.Fatalf("second half is not the delete: %q", tx.execs[1])
	}
}

func TestApplicationRepository_Decide_DeleteFailureRollsBack(t *testing.T) {
	tx := &stubTx{execFn: func(sql string) (pgconn.CommandTag, error) {
		if strings.Contains(sql, "INSERT") {
			return pgconn.NewCommandTag("INSERT 0 1"), nil
		}
		return pgconn.CommandTag{}, errors.New("connection reset")
	}}
	r := &ApplicationRepository{tx: &stubTxBeginner{tx: tx}}

	if err := r.Decide(context.Background(), 7, domain.StateRejected); err == nil {
		t.Fatal("expected delete failure to surface")
	}
	if tx.commits != 0 {
		t.Fatalf("half-applied move must not commit, got %d commits", tx.commits)
	}
	if tx.rollbacks == 0 {
		t.Fatal("expected rollback after failed delete")
	}
}

func TestApplicationRepository_Decide_MissingRowAborts(t *testing.T) {
	tx := &stubTx{execFn: func(sql string) (pgconn.CommandTag, error) {
		return pgconn.NewCommandTag("INSERT 0 0"), nil
	}}
	r := &ApplicationRepository{tx: &stubTxBeginner{tx: tx}}

	err := r.Decide(context.Background(), 404, domain.StateAccepted)
	if !errors.Is(err, domain.ErrApplicationNotFound) {
		t.Fatalf("expected ErrApplicationNotFound, got %v", err)
	}
	if tx.commits != 0 {
		t.Fatalf("nothing to move, nothing to commit: %d commits", tx.commits)
	}
	if len(tx.execs) != 1 {
		t.Fatalf("delete must not run after an empty insert: %v", tx.execs)
	}
}

func TestApplicationRepository_Decide_RejectsNonTerminalState(t *testing.T) {
	beginner := &stubTxBeginner{tx: &stubTx{}}
	r := &ApplicationRepository{tx: beginner}

	err := r.Decide(context.Background(), 7, domain.StateActive)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if beginner.begins != 0 {
		t.Fatalf("no transaction should start for an invalid target state")
	}
}
