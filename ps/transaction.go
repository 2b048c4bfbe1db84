package ps

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing/object"
	"github.com/go-git/go-git/v6/plumbing/storer"
)

type Transaction struct {
	Id      string
	When    time.Time
	Author  string // "Name <email>" format
	Message string
}

func (transaction Transaction) String() string {
	return fmt.Sprintf("Transaction{Id: %s, When: %s, Author: %s}", transaction.Id, transaction.When, transaction.Author)
}

// Short returns the abbreviated commit hash.
func (transaction Transaction) Short() string {
	if len(transaction.Id) > 8 {
		return transaction.Id[:8]
	}
	return transaction.Id
}

func transactionFromCommit(c *object.Commit) Transaction {
	author := ""
	if c.Author.Name != "" || c.Author.Email != "" {
		author = fmt.Sprintf("%s <%s>", c.Author.Name, c.Author.Email)
	}

	return Transaction{
		Id:      c.Hash.String(),
		When:    c.Committer.When,
		Author:  author,
		Message: strings.TrimSpace(c.Message),
	}
}

func (persistence *Persistence) LatestTransaction() Transaction {
	if !persistence.IsInitialized() {
		return Transaction{}
	}

	persistence.mu.RLock()
	defer persistence.mu.RUnlock()

	headRef, err := persistence.repo.Head()
	if err != nil || headRef == nil {
		// No commits yet
		return Transaction{}
	}

	commit, err := persistence.repo.CommitObject(headRef.Hash())
	if err != nil {
		return Transaction{}
	}

	return transactionFromCommit(commit)
}

// History returns up to limit transactions, newest first. A limit of zero or
// less returns the full history.
func (persistence *Persistence) History(limit int) ([]Transaction, error) {
	if err := persistence.ensureInitialized(); err != nil {
		return nil, err
	}

	persistence.mu.RLock()
	defer persistence.mu.RUnlock()

	if _, err := persistence.repo.Head(); err != nil {
		return nil, nil
	}

	cIter, err := persistence.repo.Log(&git.LogOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to read log: %w", err)
	}
	defer cIter.Close()

	var transactions []Transaction
	err = cIter.ForEach(func(c *object.Commit) error {
		if limit > 0 && len(transactions) >= limit {
			return storer.ErrStop
		}
		transactions = append(transactions, transactionFromCommit(c))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return transactions, nil
}
