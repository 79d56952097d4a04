package main

import (
	"errors"
	"fmt"

	"github.com/lox/rpsfair/internal/fairness"
)

var errMismatch = errors.New("HMAC does not match the revealed key and move")

type VerifyCmd struct {
	Key  string `required:"" help:"Revealed HMAC key (hex)"`
	Move string `required:"" help:"Computer move as printed after the round"`
	HMAC string `name:"hmac" required:"" help:"HMAC published before the round (hex)"`
}

func (c *VerifyCmd) Run() error {
	ok, err := fairness.Verify(c.Key, c.Move, c.HMAC)
	if err != nil {
		return err
	}
	if !ok {
		return errMismatch
	}
	fmt.Println("OK: the computer committed to", c.Move)
	return nil
}
