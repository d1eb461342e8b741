//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package turtle

import (
	"fmt"
	"strings"
)

// A Call is one actor call seen by a Recorder.
type Call struct {
	Name string
	Args []float64
}

func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = fmt.Sprintf("%.6g", a)
	}
	return c.Name + "(" + strings.Join(args, ", ") + ")"
}

// Recorder is an actor that only remembers the calls made on it.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) Move(distance float64) {
	r.Calls = append(r.Calls, Call{Name: "move", Args: []float64{distance}})
}

func (r *Recorder) Jump(x, y float64) {
	r.Calls = append(r.Calls, Call{Name: "jump", Args: []float64{x, y}})
}

func (r *Recorder) Rotate(angle float64) {
	r.Calls = append(r.Calls, Call{Name: "rotate", Args: []float64{angle}})
}

// Strings returns the recorded calls in the form "jump(10, 20)".
func (r *Recorder) Strings() []string {
	out := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		out[i] = c.String()
	}
	return out
}
