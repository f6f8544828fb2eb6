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

const (
	jsonMimeType = "application/json"
)

func jsonResponse(schemaName string) MethodResponses {
	return MethodResponses{
		200: MethodResponse{
			Description: "OK",
			Content: map[string]MethodResponseContent{
				jsonMimeType: {Schema: MethodResponseSchema{Ref: schemaRef(schemaName)}},
			},
		},
	}
}

func posSchemeParam() Parameter {
	return Parameter{
		Name:        "posScheme",
		In:          "query",
		Description: "Encoding of PoS values. By default, the configured scheme is used.",
		Required:    false,
		Schema: ParamSchema{
			Type: "string",
			Enum: []string{"ppTagset", "directPos"},
		},
	}
}

func langParam() Parameter {
	return Parameter{
		Name:        "lang",
		In:          "query",
		Description: "An ISO 639-1 code of the language of labels. By default, `en` is used.",
		Required:    false,
		Schema: ParamSchema{
			Type: "string",
		},
	}
}

func NewResponse(ver, url string) *Response {
	paths := make(map[string]Methods)
	minZero := 0

	paths["/query-matches"] = Methods{
		Get: &Method{
			Summary:     "QueryMatches",
			Description: "Finds all the readings (lemma + PoS) of a word or an n-gram along with their total frequencies. The result is sorted by ipm in descending order.",
			OperationID: "QueryMatches",
			Parameters: []Parameter{
				{
					Name:        "q",
					In:          "query",
					Description: "A searched word or n-gram. Words must be separated by single spaces.",
					Required:    true,
					Schema: ParamSchema{
						Type: "string",
					},
				},
				posSchemeParam(),
				{
					Name:        "minFreq",
					In:          "query",
					Description: "Minimum frequency. Accepted but currently not applied.",
					Required:    false,
					Schema: ParamSchema{
						Type:    "integer",
						Minimum: &minZero,
						Default: 0,
					},
				},
				langParam(),
			},
			Responses: jsonResponse("QueryMatches"),
		},
	}

	paths["/word-forms/{lemma}"] = Methods{
		Get: &Method{
			Summary:     "WordForms",
			Description: "Finds all the word forms of a lemma along with their frequencies.",
			OperationID: "WordForms",
			Parameters: []Parameter{
				{
					Name:        "lemma",
					In:          "path",
					Description: "A lemma. Multi-word lemmas are separated by single spaces.",
					Required:    true,
					Schema: ParamSchema{
						Type: "string",
					},
				},
				{
					Name:        "pos",
					In:          "query",
					Description: "Space separated PoS values (one per word). If omitted, forms of any PoS are returned.",
					Required:    false,
					Schema: ParamSchema{
						Type: "string",
					},
				},
				posSchemeParam(),
				langParam(),
			},
			Responses: jsonResponse("QueryMatches"),
		},
	}

	paths["/source-info/{corpusId}"] = Methods{
		Get: &Method{
			Summary:     "SourceInfo",
			Description: "Shows information about a resource frequencies are derived from.",
			OperationID: "SourceInfo",
			Parameters: []Parameter{
				{
					Name:        "corpusId",
					In:          "path",
					Description: "An ID of a resource",
					Required:    true,
					Schema: ParamSchema{
						Type: "string",
					},
				},
				langParam(),
			},
			Responses: jsonResponse("SourceInfo"),
		},
	}

	paths["/similar-freq-words"] = Methods{
		Get: &Method{
			Summary:     "SimilarFreqWords",
			Description: "Finds words with a frequency similar to a lemma. Not supported by the frequency database, the result is always empty.",
			OperationID: "SimilarFreqWords",
			Parameters: []Parameter{
				{
					Name:        "lemma",
					In:          "query",
					Description: "A lemma",
					Required:    true,
					Schema: ParamSchema{
						Type: "string",
					},
				},
				{
					Name:        "pos",
					In:          "query",
					Description: "Space separated PoS values",
					Required:    false,
					Schema: ParamSchema{
						Type: "string",
					},
				},
				{
					Name:        "rng",
					In:          "query",
					Description: "Number of words to return",
					Required:    false,
					Schema: ParamSchema{
						Type:    "integer",
						Default: 10,
					},
				},
			},
			Responses: jsonResponse("QueryMatches"),
			Deprecated:  true,
		},
	}

	return &Response{
		OpenAPI: "3.1.0",
		Info: Info{
			Title:       "FREQGATE - word frequency information",
			Description: "Provides readings, word forms and frequency bands of words and n-grams derived from a frequency database",
			Version:     ver,
		},
		Servers: []Server{
			{URL: url},
		},
		Paths: paths,
		Components: Components{
			Schemas: createSchemas(),
		},
	}
}
