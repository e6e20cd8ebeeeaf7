// Package pgx implements the record store on PostgreSQL via pgxpool.
//
// Expected schema:
//
//	CREATE TABLE public.accounts (
//	    id            uuid PRIMARY KEY DEFAULT gen_random_uuid(),
//	    firstname     text NOT NULL DEFAULT '',
//	    lastname      text NOT NULL DEFAULT '',
//	    email         text NOT NULL UNIQUE,
//	    password_hash text NOT NULL,
//	    mobile        text NOT NULL DEFAULT '',
//	    address       text NOT NULL DEFAULT '',
//	    created_at    timestamptz NOT NULL DEFAULT now()
//	);
//
// The UNIQUE constraint on email is load-bearing: it is the only thing
// enforcing email uniqueness, for inserts and updates alike.
package pgx

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KapilPandit0408/gibots"
)

type Adapter struct {
	pool *pgxpool.Pool
}

var _ gibots.RecordStore = (*Adapter)(nil)

func New(pool *pgxpool.Pool) *Adapter {
	return &Adapter{
		pool: pool,
	}
}
