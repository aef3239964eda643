// Copyright 2025 Atenea Labs
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


package storage

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"

	"github.com/atenea/rumbo/core"
	"github.com/atenea/rumbo/profile"
)

// Serializers for the persisted types. Hand-written in MUS format:
// varint-encoded numbers, length-prefixed strings, fields in struct order.

var (
	// IDMUS serializes core.ID values.
	IDMUS = idMUS{}
	// TurnMUS serializes conversation turns.
	TurnMUS = turnMUS{}
	// ProfileMUS serializes profile snapshots.
	ProfileMUS = profileMUS{}

	stringSliceMUS = ord.NewSliceSer[string](ord.String)
)

type idMUS struct{}

func (idMUS) Marshal(id core.ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (core.ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return core.ID(v), n, err
}

func (idMUS) Size(id core.ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

type turnMUS struct{}

func (turnMUS) Marshal(t core.Turn, bs []byte) (n int) {
	n = IDMUS.Marshal(t.SessionId, bs)
	n += varint.Uint64.Marshal(t.Seq, bs[n:])
	n += varint.Int64.Marshal(int64(t.Speaker), bs[n:])
	n += ord.String.Marshal(t.Contents, bs[n:])
	n += varint.Int64.Marshal(t.Timestamp.UnixNano(), bs[n:])
	return
}

func (turnMUS) Unmarshal(bs []byte) (t core.Turn, n int, err error) {
	var n1 int
	t.SessionId, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	t.Seq, n1, err = varint.Uint64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var speaker int64
	speaker, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	t.Speaker = core.Speaker(speaker)
	t.Contents, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var nanos int64
	nanos, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	t.Timestamp = time.Unix(0, nanos).UTC()
	return
}

func (turnMUS) Size(t core.Turn) (size int) {
	size = IDMUS.Size(t.SessionId)
	size += varint.Uint64.Size(t.Seq)
	size += varint.Int64.Size(int64(t.Speaker))
	size += ord.String.Size(t.Contents)
	size += varint.Int64.Size(t.Timestamp.UnixNano())
	return
}

type profileMUS struct{}

func (profileMUS) Marshal(s profile.State, bs []byte) (n int) {
	n = ord.String.Marshal(s.Language, bs)
	n += ord.String.Marshal(s.Area, bs[n:])
	n += ord.String.Marshal(s.Level, bs[n:])
	n += varint.Float64.Marshal(s.MaxHours, bs[n:])
	n += ord.String.Marshal(s.Access, bs[n:])
	n += ord.String.Marshal(s.Population, bs[n:])
	n += ord.String.Marshal(s.KeywordsText, bs[n:])
	n += varint.Int64.Marshal(int64(s.Age), bs[n:])
	n += ord.String.Marshal(s.ShortBio, bs[n:])
	n += ord.String.Marshal(s.SelfStyle, bs[n:])
	n += stringSliceMUS.Marshal(s.Interests, bs[n:])
	n += stringSliceMUS.Marshal(s.Values, bs[n:])
	n += ord.String.Marshal(s.LearningStyle, bs[n:])
	n += ord.String.Marshal(s.Goals, bs[n:])
	n += ord.String.Marshal(s.Constraints, bs[n:])
	n += varint.Int64.Marshal(int64(s.Step), bs[n:])
	n += ord.Bool.Marshal(s.Confirmed, bs[n:])
	return
}

func (profileMUS) Unmarshal(bs []byte) (s profile.State, n int, err error) {
	var n1 int
	next := func(dst *string) {
		if err != nil {
			return
		}
		*dst, n1, err = ord.String.Unmarshal(bs[n:])
		n += n1
	}
	next(&s.Language)
	next(&s.Area)
	next(&s.Level)
	if err != nil {
		return
	}
	s.MaxHours, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	next(&s.Access)
	next(&s.Population)
	next(&s.KeywordsText)
	if err != nil {
		return
	}
	var age int64
	age, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	s.Age = int(age)
	next(&s.ShortBio)
	next(&s.SelfStyle)
	if err != nil {
		return
	}
	s.Interests, n1, err = stringSliceMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	s.Values, n1, err = stringSliceMUS.Unmarshal(bs[n:])
	n += n1
	next(&s.LearningStyle)
	next(&s.Goals)
	next(&s.Constraints)
	if err != nil {
		return
	}
	var step int64
	step, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	s.Step = int(step)
	s.Confirmed, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	return
}

func (profileMUS) Size(s profile.State) (size int) {
	size = ord.String.Size(s.Language)
	size += ord.String.Size(s.Area)
	size += ord.String.Size(s.Level)
	size += varint.Float64.Size(s.MaxHours)
	size += ord.String.Size(s.Access)
	size += ord.String.Size(s.Population)
	size += ord.String.Size(s.KeywordsText)
	size += varint.Int64.Size(int64(s.Age))
	size += ord.String.Size(s.ShortBio)
	size += ord.String.Size(s.SelfStyle)
	size += stringSliceMUS.Size(s.Interests)
	size += stringSliceMUS.Size(s.Values)
	size += ord.String.Size(s.LearningStyle)
	size += ord.String.Size(s.Goals)
	size += ord.String.Size(s.Constraints)
	size += varint.Int64.Size(int64(s.Step))
	size += ord.Bool.Size(s.Confirmed)
	return
}

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, IDMUS.Size(id))
	IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := IDMUS.Unmarshal(data)
	return id, err
}

// MarshalTurn serializes a Turn to bytes.
func MarshalTurn(turn *core.Turn) []byte {
	buf := make([]byte, TurnMUS.Size(*turn))
	TurnMUS.Marshal(*turn, buf)
	return buf
}

// UnmarshalTurn deserializes a Turn from bytes.
func UnmarshalTurn(data []byte) (*core.Turn, error) {
	turn, _, err := TurnMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &turn, nil
}

// MarshalProfile serializes a profile snapshot to bytes.
func MarshalProfile(state profile.State) []byte {
	buf := make([]byte, ProfileMUS.Size(state))
	ProfileMUS.Marshal(state, buf)
	return buf
}

// UnmarshalProfile deserializes a profile snapshot from bytes.
func UnmarshalProfile(data []byte) (profile.State, error) {
	state, _, err := ProfileMUS.Unmarshal(data)
	return state, err
}
