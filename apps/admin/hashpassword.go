package main

import (
	"fmt"

	"github.com/dieti/studyplan/core/staff"
)

func (cli *commandLine) hashPassword(pwd string) error {
	hash, err := staff.HashPassword(pwd)
	if err != nil {
		return err
	}
	fmt.Println(hash)
	return nil
}
