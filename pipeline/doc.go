// Copyright 2026 Vantry Commerce
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package pipeline converts catalog mutation events into index documents and
// fans them out to the projections that consume them.
//
// The event bus delivers each event to every subscriber sequentially, in
// subscription order, completing one listener before invoking the next. A
// batch publish fully delivers event i to all listeners before event i+1 is
// published. Downstream consumers rely on this total ordering.
//
// DocumentBuilder expands one event into one document per (locale, currency)
// pair. The snapshot store keeps the latest non-deleted event per catalog ID
// as the input to a full reindex.
package pipeline
