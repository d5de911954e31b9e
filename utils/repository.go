// Copyright (C) 2025 EduChain Contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package utils

// Repository is the common contract of all gorm backed repositories. Tx is
// the transaction handle, passing the zero value runs the operation on the
// repository's own connection.
type Repository[ID any, T Tabler, Tx any] interface {
	Create(tx Tx, t *T) error
	CreateBatch(tx Tx, ts []T) error
	Read(id ID) (T, error)
	Update(tx Tx, t *T) error
	Delete(tx Tx, id ID) error
	List(ids []ID) ([]T, error)
	All() ([]T, error)
	Transaction(func(tx Tx) error) error
	GetDB(tx Tx) Tx

	Save(tx Tx, t *T) error
	SaveBatch(tx Tx, ts []T) error
}
