package domain

// Produto representa a única entidade do serviço, espelhando a tabela produtos.
// O ID é gerado pelo banco no INSERT e nunca é alterado depois.
type Produto struct {
	ID        int64   `json:"id" example:"1"`
	Nome      string  `json:"nome" example:"Mouse"`
	Descricao *string `json:"descricao" example:"Mouse óptico USB"` // null quando ausente
	Preco     float64 `json:"preco" example:"49.9"`
}

// ProdutoInput é o corpo aceito por POST e PUT /produtos.
// Descricao ausente ou null vira NULL no banco; Nome vazio ou Preco zero falham na validação.
type ProdutoInput struct {
	Nome      string  `json:"nome" validate:"required" example:"Mouse"`
	Descricao *string `json:"descricao" example:"Mouse óptico USB"`
	Preco     float64 `json:"preco" validate:"required" example:"49.9"`
}

// ToProduto monta a representação de resposta a partir da entrada e do ID.
// Create e Update devolvem os valores recebidos, sem reler a linha do banco.
func (in ProdutoInput) ToProduto(id int64) Produto {
	return Produto{
		ID:        id,
		Nome:      in.Nome,
		Descricao: in.Descricao,
		Preco:     in.Preco,
	}
}

// Context é uma interface que encapsula o Go context.Context.
// É usado para propagar o timeout e sinais de cancelamento pelas camadas.
type Context interface{}
