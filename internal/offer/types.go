// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package offer

import (
	"github.com/alphahows/hows/internal/offer/internal/domain"
	"github.com/alphahows/hows/internal/offer/internal/event"
	"github.com/alphahows/hows/internal/offer/internal/service"
	"github.com/alphahows/hows/internal/offer/internal/web"
)

type Handler = web.Handler
type Service = service.Service

type Offer = domain.Offer
type OfferView = domain.OfferView
type Status = domain.Status
type Filter = domain.Filter
type Event = event.OfferEvent

const EventName = event.OfferEventName

var (
	ErrUnresolvedIdentity = service.ErrUnresolvedIdentity
	ErrNotFound           = service.ErrNotFound
	ErrForbidden          = service.ErrForbidden
	ErrInvalidRange       = service.ErrInvalidRange
	ErrInvalidTransition  = service.ErrInvalidTransition
	ErrInvalidOperation   = service.ErrInvalidOperation
)

type Module struct {
	Hdl *Handler
	Svc Service
}
