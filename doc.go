// Package users_function é uma função AWS Lambda que expõe a tabela DynamoDB
// "Users" por meio de cinco rotas de um API Gateway HTTP API.
//
// Visão Geral:
// Cada invocação recebe um evento HTTP API (payload v2), escolhe a rota pela
// route key, executa exatamente uma operação na tabela e devolve uma resposta
// com corpo JSON. Falhas nunca escapam do handler: viram status + mensagem.
//
// Rotas:
//
//	DELETE /users/{userId}  remove o usuário
//	GET    /users/{userId}  busca um usuário (ou {"message":"User not found"})
//	GET    /users           lista todos (ou uma página com ?limit=&next=)
//	PUT    /users           cria ou substitui o usuário do corpo
//	PATCH  /users/{userId}  altera apenas os campos enviados
//
// Status de resposta:
// Sucesso é sempre 200. Por padrão as falhas se dividem assim:
//
//	400  rota desconhecida, corpo malformado, payload inválido, ?limit= ou ?next= inválidos
//	404  PATCH de um userId que não existe
//	500  falha do DynamoDB (timeout, throttling, permissão)
//
// GET de um userId inexistente não é falha: responde 200 com
// {"message":"User not found"}. DELETE de um userId inexistente também é 200.
//
// Com UNIFORM_ERROR_STATUS=true (ou errors.uniform_status no YAML) toda falha
// responde 400, inclusive os casos 404 e 500 acima. É o modo para clientes que
// só conhecem o contrato 200 | 400.
//
// Sub-Pacotes Principais:
//
// 1. envloader:
//   - Carregamento de configurações via tags "env", "envDefault" e "envRequired".
//
// 2. dyndb:
//   - Abstração de persistência (Store[T]) com CRUD tipado, update parcial
//     condicional e scan paginado.
//
// 3. pkg/router:
//   - Tabela de rotas, decodificação dos corpos e mapeamento de erros para status.
//
// 4. pkg/transport:
//   - Adaptador Lambda (correlation id, logs, métricas) e servidor HTTP local.
//
// 5. pkg/config, pkg/cloud, pkg/logger, pkg/observability:
//   - Configuração YAML + env, clients AWS, zerolog e Datadog.
//
// Execução local:
//
//	RUNTIME=local DYNAMODB_ENDPOINT=http://localhost:8000 go run ./cmd/function
package users_function
