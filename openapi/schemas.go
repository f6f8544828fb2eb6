// Copyright 2026 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2026 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2026 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//   This file is part of FREQGATE.
//
//  FREQGATE is free software: you can redistribute it and/or modify
//  it under the terms of the GNU General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  FREQGATE is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU General Public License for more details.
//
//  You should have received a copy of the GNU General Public License
//  along with FREQGATE.  If not, see <https://www.gnu.org/licenses/>.

package openapi

func schemaRef(name string) string {
	return "#/components/schemas/" + name
}

func createSchemas() ObjectProperties {
	ans := make(ObjectProperties)
	ans["PosItem"] = ObjectProperty{
		Type: "object",
		Properties: ObjectProperties{
			"value": ObjectProperty{
				Type:        "string",
				Description: "PoS value as used in queries (e.g. N for a noun in the ppTagset scheme)",
			},
			"label": ObjectProperty{
				Type:        "string",
				Description: "a localized label of the value",
			},
		},
	}
	ans["QueryMatch"] = ObjectProperty{
		Type: "object",
		Properties: ObjectProperties{
			"word": ObjectProperty{
				Type: "string",
			},
			"lemma": ObjectProperty{
				Type: "string",
			},
			"pos": ObjectProperty{
				Type:        "array",
				Items:       &arrayItem{Ref: schemaRef("PosItem")},
				Description: "one item per word of the lemma",
			},
			"upos": ObjectProperty{
				Type:        "array",
				Items:       &arrayItem{Ref: schemaRef("PosItem")},
				Description: "always empty",
			},
			"ipm": ObjectProperty{
				Type:        "number",
				Description: "instances per million tokens",
			},
			"flevel": ObjectProperty{
				Type:        "integer",
				Enum:        []any{1, 2, 3, 4, 5},
				Description: "frequency band (1 = very rare, 5 = very frequent)",
			},
			"abs": ObjectProperty{
				Type:        "integer",
				Description: "absolute frequency",
			},
			"arf": ObjectProperty{
				Type:        "number",
				Description: "average reduced frequency; -1 if not available",
			},
			"isCurrent": ObjectProperty{
				Type: "boolean",
			},
		},
	}
	ans["QueryMatches"] = ObjectProperty{
		Type: "object",
		Properties: ObjectProperties{
			"matches": ObjectProperty{
				Type:  "array",
				Items: &arrayItem{Ref: schemaRef("QueryMatch")},
			},
		},
	}
	ans["SourceInfo"] = ObjectProperty{
		Type: "object",
		Properties: ObjectProperties{
			"id": ObjectProperty{
				Type: "string",
			},
			"title": ObjectProperty{
				Type: "string",
			},
			"description": ObjectProperty{
				Type: "string",
			},
			"size": ObjectProperty{
				Type:        "integer",
				Description: "size of the resource in tokens",
			},
		},
	}
	return ans
}
