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


// Package reindex orchestrates full index rebuilds from the snapshot store.
//
// A Job walks the snapshot in batches, expands every event through the
// document builder, and writes the result through the index writer's staging
// protocol. The job is an explicit state machine:
//
//	idle → running ⇄ paused
//	running → completed
//	running → failed
//
// Pause takes effect at the next batch boundary and loses no progress;
// resume re-enters the loop where it left off. Any error rolls the staged
// writes back and leaves the job restartable from scratch.
package reindex
