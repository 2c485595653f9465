package repositories

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// isDuplicateEntryError reports whether the error is a MySQL/MariaDB unique
// constraint violation. Used to translate constraint failures into the
// validation errors the services expose.
func isDuplicateEntryError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

// isForeignKeyConstraintError reports whether the error is a foreign key
// constraint failure, e.g. an insert referencing a listing that was deleted
// between lookup and write.
func isForeignKeyConstraintError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1452
}
