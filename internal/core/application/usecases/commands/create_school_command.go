package commands

import (
	"errors"

	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/core/domain/model/school"
	"booksamples/internal/pkg/guard"
)

var ErrCreateSchoolCommandIsNotConstructed = errors.New(
	"CreateSchoolCommand must be created via NewCreateSchoolCommand constructor",
)

// CreateSchoolCommand registers a school that receives samples. Name and
// email format are checked when the school is built by the handler.
type CreateSchoolCommand struct {
	schoolID kernel.UUID
	name     string
	board    string
	contact  school.Contact
	address  school.Address

	guard guard.ConstructorGuard
}

func NewCreateSchoolCommand(
	schoolID kernel.UUID,
	name, board string,
	contact school.Contact,
	address school.Address,
) (CreateSchoolCommand, error) {
	if err := schoolID.Validate(); err != nil {
		return CreateSchoolCommand{}, err
	}

	return CreateSchoolCommand{
		schoolID: schoolID,
		name:     name,
		board:    board,
		contact:  contact,
		address:  address,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateSchoolCommand) Validate() error {
	return c.guard.Validate(ErrCreateSchoolCommandIsNotConstructed)
}

func (c CreateSchoolCommand) SchoolID() kernel.UUID { return c.schoolID }
func (c CreateSchoolCommand) Name() string { return c.name }
func (c CreateSchoolCommand) Board() string { return c.board }
func (c CreateSchoolCommand) Contact() school.Contact { return c.contact }
func (c CreateSchoolCommand) Address() school.Address { return c.address }
