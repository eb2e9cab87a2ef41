// Copyright 2016 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package langdetect

import (
	"log"

	"go.uber.org/automaxprocs/maxprocs"
)

func init() {
	// Under cgroup CPU quotas (containers, k8s), runtime.GOMAXPROCS(0)
	// otherwise reports the host's full core count, which oversizes
	// NewDefaultExecutor's pool.
	if _, err := maxprocs.Set(); err != nil {
		log.Printf("langdetect: failed to set GOMAXPROCS: %v", err)
	}
}
