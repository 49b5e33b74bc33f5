/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package common

import "golang.org/x/exp/constraints"

// Number is the set of element types that selection and median operate on.
// Every type in the set is totally ordered except for floating point NaN.
type Number interface {
	constraints.Integer | constraints.Float
}

// IsNaN reports whether v is a floating point NaN. It is always false for
// integer types.
func IsNaN[T Number](v T) bool {
	return v != v
}

// ContainsNaN reports whether any element of values is NaN.
func ContainsNaN[T Number](values []T) bool {
	for _, v := range values {
		if IsNaN(v) {
			return true
		}
	}
	return false
}
