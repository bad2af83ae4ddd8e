package model

import "github.com/google/uuid"

// assignId gives new rows a UUID before insert so ids never depend on database defaults.
func assignId(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

// All returns every table managed by the migrator, in dependency order.
func All() []interface{} {
	return []interface{}{
		&Role{},
		&Admin{},
		&Tier{},
		&Player{},
		&Transaction{},
		&Bonus{},
		&CashbackProgram{},
		&Promotion{},
		&Banner{},
		&ApiKey{},
		&WagerRace{},
		&TriviaQuestion{},
		&UtmEvent{},
		&AuditLog{},
		&Upload{},
	}
}

