// Package dyndb fornece uma abstração genérica e fortemente tipada sobre o
// AWS DynamoDB Go SDK (v2).
//
// Visão Geral:
// O pacote oferece a interface `Store[T]`, que simplifica as operações CRUD
// eliminando a necessidade de lidar diretamente com os tipos de baixo nível
// do SDK (AttributeValue, expressões, paginação).
//
// Funcionalidades Principais:
//   - CRUD Tipado: `Get`, `Put`, `Delete` usando tipos Go nativos.
//   - Update Parcial: `Update` gera um `SET` apenas com os atributos
//     informados; `MustExist()` impede que o update crie o item.
//   - Scan Paginado: `List` devolve tokens base64 opacos; `ScanAll` percorre
//     a tabela inteira.
//   - Mocks Integrados: `MockStore` para testes unitários das camadas acima.
//
// Exemplo:
//
//	type User struct {
//		UserID string `dynamodbav:"userId"`
//		Email  string `dynamodbav:"email,omitempty"`
//	}
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	store := dyndb.New(dynamodb.NewFromConfig(cfg), dyndb.TableConfig[User]{
//		TableName: "Users",
//		HashKey:   "userId",
//	})
//
//	_ = store.Put(ctx, User{UserID: "u1", Email: "a@x.com"})
//
//	u, err := store.Get(ctx, "u1", nil)
//	if errors.Is(err, dyndb.ErrNotFound) { /* ... */ }
//
//	err = store.Update(ctx, "u1", nil, map[string]any{"email": "b@x.com"}, dyndb.MustExist())
//
// Configuração:
// O Store é configurado via `TableConfig[T]`. TableName e HashKey são
// obrigatórios e não têm fallback de ambiente.
package dyndb
