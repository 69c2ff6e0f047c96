// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
//
// Package envloader carrega variáveis de ambiente para campos de uma struct
// Go usando reflection e as tags `env`, `envDefault` e `envRequired`.
//
// Visão Geral:
// O carregamento funciona como uma camada por cima de valores já existentes.
// A função de configuração do serviço primeiro lê um YAML opcional e depois
// chama Load; assim uma variável de ambiente sempre vence o arquivo, e o
// default só entra quando nenhum dos dois preencheu o campo.
//
// Tipos suportados: string, int*, uint*, bool, float*, time.Duration,
// []string (separado por vírgula) e structs aninhadas (inclusive ponteiros).
//
// Exemplo:
//
//	type TableConf struct {
//		Name string `yaml:"name" env:"USERS_TABLE_NAME" envDefault:"Users"`
//	}
//
//	cfg := TableConf{Name: "from-yaml"}
//	if err := envloader.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//	// USERS_TABLE_NAME definido -> usa a variável; senão mantém "from-yaml".
//
// Erros tipados: InvalidConfigError, FieldError (com Unwrap),
// UnsupportedTypeError e RequiredError.
package envloader
