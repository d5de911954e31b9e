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

package repositories

import (
	"github.com/educhain-dev/educhain/shared"
	"go.uber.org/fx"
)

// Module provides all repository constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewSupplyRepository, fx.As(new(shared.SupplyRepository)))),
	fx.Provide(fx.Annotate(NewTransactionRepository, fx.As(new(shared.TransactionRepository)))),
	fx.Provide(fx.Annotate(NewSchoolRepository, fx.As(new(shared.SchoolRepository)))),
	fx.Provide(fx.Annotate(NewProfileRepository, fx.As(new(shared.ProfileRepository)))),
	fx.Provide(fx.Annotate(NewDocumentRepository, fx.As(new(shared.DocumentRepository)))),
)
